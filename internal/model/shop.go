package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every order is created with.
const OrderStatusPending = "Pending"

type User struct {
	ID           int    `json:"userId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Product JSON keys match what the storefront pages read.
type Product struct {
	ID          int             `json:"ProductID"`
	Name        string          `json:"Name"`
	Description string          `json:"Description"`
	Price       decimal.Decimal `json:"Price"`
	ImagePath   string          `json:"ImagePath"`
	Stock       int             `json:"Stock"`
	CategoryID  *int            `json:"CategoryID"`
	IsTodayDeal bool            `json:"IsTodayDeal"`
}

type Category struct {
	ID   int    `json:"CategoryID"`
	Name string `json:"CategoryName"`
}

type Order struct {
	ID            int             `json:"orderId"`
	UserID        int             `json:"userId"`
	OrderDate     time.Time       `json:"orderDate"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	Lines         []OrderLine     `json:"lines,omitempty"`
}

type OrderLine struct {
	OrderID   int             `json:"orderId"`
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Total returns the line's price times its quantity.
func (l OrderLine) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Sale is a row written by the legacy purchase endpoints. Depending on the
// path either ProductName or UserID/ProductID is populated.
type Sale struct {
	ID           int
	UserID       *int
	ProductID    *int
	ProductName  *string
	Quantity     int
	Price        decimal.Decimal
	PurchaseDate time.Time
}
