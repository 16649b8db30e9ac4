package usecase

import (
	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/admin"
)

type impl struct {
	admin admin.Repo
	// static admins come from config and cannot be removed at runtime
	static map[domain.Address]struct{}
}

func New(repo admin.Repo, staticAdmins []domain.Address) admin.Usecase {
	static := map[domain.Address]struct{}{}
	for _, a := range staticAdmins {
		static[a.ToLower()] = struct{}{}
	}
	return &impl{admin: repo, static: static}
}

func (im *impl) FindAll(c ctx.Ctx) ([]*admin.Admin, error) {
	return im.admin.FindAll(c)
}

func (im *impl) IsAuthorizedAdmin(c ctx.Ctx, address domain.Address) (bool, error) {
	if _, ok := im.static[address.ToLower()]; ok {
		return true, nil
	}
	if res, err := im.admin.FindOne(c, address); err != nil {
		c.WithField("err", err).Error("admin.FindOne failed")
		return false, err
	} else {
		return res != nil, nil
	}
}

func (im *impl) Add(c ctx.Ctx, address domain.Address, name string) error {
	if err := im.admin.Create(c, admin.Admin{Address: address.ToLower(), Name: name}); err != nil {
		c.WithField("err", err).Error("admin.Create failed")
		return err
	}
	return nil
}

func (im *impl) Remove(c ctx.Ctx, address domain.Address) error {
	if err := im.admin.Delete(c, address); err != nil {
		c.WithField("err", err).Error("admin.Delete failed")
		return err
	}
	return nil
}
