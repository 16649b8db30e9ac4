package admin

import (
	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
)

type Admin struct {
	Name    string         `json:"name" bson:"name"`
	Address domain.Address `json:"address" bson:"address"`
}

type Repo interface {
	FindAll(c ctx.Ctx) ([]*Admin, error)
	FindOne(c ctx.Ctx, address domain.Address) (*Admin, error)
	Create(c ctx.Ctx, value Admin) error
	Delete(c ctx.Ctx, address domain.Address) error
}

type Usecase interface {
	FindAll(c ctx.Ctx) ([]*Admin, error)
	Add(c ctx.Ctx, address domain.Address, name string) error
	Remove(c ctx.Ctx, address domain.Address) error
	IsAuthorizedAdmin(c ctx.Ctx, address domain.Address) (bool, error)
}
