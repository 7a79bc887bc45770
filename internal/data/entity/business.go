package entity

type Business struct {
	Base
	Name              string `db:"name"`
	Slug              string `db:"slug"`
	Currency          string `db:"currency"`
	AutoCancelEnabled bool   `db:"auto_cancel_enabled"`
	AutoCancelMinutes int    `db:"auto_cancel_minutes"`
}
