package main

import (
	"strings"
	"time"

	"github.com/anyproto/any-copydebug/copier"
)

// demo model inspected by the commands

type Customer struct {
	ID    string
	Name  string
	Email string
}

type Order struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Customer  *Customer
	Total     float64
	Notes     string
}

type Invoice struct {
	ID     string
	Order  *Order
	Total  float64
	Issued time.Time
}

func demoSamples() []any {
	return []any{Customer{}, Order{}, Invoice{}}
}

// demoEngine is the copier used to duplicate orders: ids are reset, customers are shared
func demoEngine() *copier.Copier {
	return copier.New().
		AddFilter(copier.SetZeroFilter{}, copier.NewPropertyNameMatcher("ID")).
		AddFilter(copier.KeepFilter{}, copier.NewPropertyMatcherFor(Order{}, "Customer")).
		AddFilter(copier.NewReplaceFilter(func(v any) any {
			return strings.TrimSpace(v.(string))
		}), copier.NewPropertyMatcherFor(Order{}, "Notes")).
		AddFilter(copier.SetZeroFilter{}, copier.NewPropertyTypeMatcherFor(time.Time{}))
}
