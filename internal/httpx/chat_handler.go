package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/adisetya/lapakstore/internal/chat"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChatHandler struct {
	Chat *chat.Client
	Log  *zap.Logger
}

func (h *ChatHandler) Register(r *chi.Mux) {
	r.Post("/api/chat", h.send)
}

func (h *ChatHandler) send(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message wajib diisi")
		return
	}

	reply, err := h.Chat.Reply(r.Context(), req.Message)
	if err != nil {
		h.Log.Warn("chat upstream failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "asisten sedang tidak tersedia")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
