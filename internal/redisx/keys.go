package redisx

import "time"

const (
	// Keranjang per sesi: cart:{session_id} -> dokumen JSON keranjang
	KeyCart = "cart:%s"

	// Daftar URL banner hero (JSON array), side effect dari sync cycle
	KeyBanners = "settings:banners"

	// Token sesi admin: admin:session:{token} -> "1"
	KeyAdminSession = "admin:session:%s"

	// Cache status order: order_status:{order_id} -> {"status": "..."}
	KeyOrderStatus = "order_status:%s"

	// Dedup event worker: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLCart         = 7 * 24 * time.Hour
	TTLAdminSession = 12 * time.Hour
	TTLStatusCache  = 5 * time.Minute
	TTLDedup        = 48 * time.Hour
)
