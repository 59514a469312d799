package models

import "maps"

type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Price       int64             `json:"price"`
	ImageURL    string            `json:"image_url"`
	Stock       int               `json:"stock"`
	Specs       map[string]string `json:"specs"`
}

func (p Product) RecordID() string    { return p.ID }
func (p Product) Kind() RecordKind    { return KindProduct }
func (p Product) DisplayName() string { return p.Name }
func (p Product) UnitPrice() int64    { return p.Price }
func (Product) isRecord()             {}

func (p Product) Snapshot() Cartable {
	p.Specs = maps.Clone(p.Specs)
	return p
}

func (p Product) InStock() bool { return p.Stock > 0 }
