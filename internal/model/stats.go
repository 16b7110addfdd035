package model

// StatsSummary : сводные счётчики для админки
type StatsSummary struct {
	Users  int `db:"users" json:"users"`
	Books  int `db:"books" json:"books"`
	Orders int `db:"orders" json:"orders"`
}
