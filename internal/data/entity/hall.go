package entity

type CinemaHall struct {
	Base
	Name       string `db:"name"`
	Rows       int    `db:"rows"`
	SeatsInRow int    `db:"seats_in_row"`
}

// Capacity is always recomputed from the grid dimensions so it cannot
// go stale after a hall edit.
func (h *CinemaHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}
