package models

// Order is the snapshot taken when a payment is accepted. It is never
// modified after creation.
type Order struct {
	ID       string   `json:"id" bson:"id"`
	Items    Cart     `json:"items" bson:"items"`
	Totals   Totals   `json:"totals" bson:"totals"`
	Customer Customer `json:"customer" bson:"customer"`
	TS       int64    `json:"ts" bson:"ts"`
}
