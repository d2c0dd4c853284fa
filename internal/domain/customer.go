package domain

import "time"

const CustomerStatusActive = "active"

type CustomerStub struct {
	Phone        string     `db:"phone"`
	Name         string     `db:"name"`
	CreationDate *time.Time `db:"creation_date"`
	Status       string     `db:"status"`
}
