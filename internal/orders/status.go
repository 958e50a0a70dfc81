package orders

import "fmt"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusDiproses   Status = "Diproses"
	StatusDikemas    Status = "Dikemas"
	StatusDikirim    Status = "Dikirim"
	StatusSelesai    Status = "Selesai"
	StatusDibatalkan Status = "Dibatalkan"
)

var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusDiproses: true, StatusDibatalkan: true},
	StatusDiproses:   {StatusDikemas: true, StatusDibatalkan: true},
	StatusDikemas:    {StatusDikirim: true, StatusDibatalkan: true},
	StatusDikirim:    {StatusSelesai: true},
	StatusSelesai:    {},
	StatusDibatalkan: {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := validNext[st]; !ok {
		return "", fmt.Errorf("unknown order status: %q", s)
	}
	return st, nil
}
