package models

import "time"

// Subcontractor is an external crew or company doing contracted work.
type Subcontractor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}
