package usecase

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/base/log"
	"github.com/dishswap/exchange-api/domain"
	"github.com/dishswap/exchange-api/domain/custody"
	"github.com/dishswap/exchange-api/service/chain/contract"
)

type Config struct {
	Repo custody.Repo

	// Optional on-chain verification. When Erc721 is set the registry answer
	// for ownership gets cross checked against the contract. When Erc20 is
	// set balance reads also report the wallet balance of the payment token.
	Erc721          contract.Erc721Contract
	Erc20           contract.Erc20Contract
	ChainId         domain.ChainId
	NftContract     domain.Address
	PaymentToken    domain.Address
	ExchangeAddress domain.Address
}

type impl struct {
	repo            custody.Repo
	erc721          contract.Erc721Contract
	erc20           contract.Erc20Contract
	chainId         domain.ChainId
	nftContract     domain.Address
	paymentToken    domain.Address
	exchangeAddress domain.Address
}

func New(cfg *Config) custody.Custody {
	return &impl{
		repo:            cfg.Repo,
		erc721:          cfg.Erc721,
		erc20:           cfg.Erc20,
		chainId:         cfg.ChainId,
		nftContract:     cfg.NftContract,
		paymentToken:    cfg.PaymentToken,
		exchangeAddress: cfg.ExchangeAddress,
	}
}

func (im *impl) VerifyOwner(c ctx.Ctx, tokenId domain.TokenId, account domain.Address) (bool, error) {
	ownership, err := im.repo.GetOwnership(c, tokenId)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.GetOwnership failed")
		return false, domain.ErrCustodyRejected
	}

	if !ownership.Owner.Equals(account) {
		return false, nil
	}

	if im.erc721 != nil {
		owner, err := im.erc721.OwnerOf(c, int32(im.chainId), string(im.nftContract), new(big.Int).SetUint64(uint64(tokenId)))
		if err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": tokenId}).Error("erc721.OwnerOf failed")
			return false, domain.ErrCustodyRejected
		}
		if !domain.Address(owner).Equals(account) {
			return false, nil
		}
	}

	return true, nil
}

func (im *impl) VerifyApproval(c ctx.Ctx, tokenId domain.TokenId) (bool, error) {
	ownership, err := im.repo.GetOwnership(c, tokenId)
	if err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.GetOwnership failed")
		return false, domain.ErrCustodyRejected
	}

	if !ownership.Approved {
		return false, nil
	}

	if im.erc721 != nil {
		approved, err := im.erc721.GetApproved(c, int32(im.chainId), string(im.nftContract), new(big.Int).SetUint64(uint64(tokenId)))
		if err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": tokenId}).Error("erc721.GetApproved failed")
			return false, domain.ErrCustodyRejected
		}
		if domain.Address(approved).Equals(im.exchangeAddress) {
			return true, nil
		}
		operatorOk, err := im.erc721.IsApprovedForAll(c, int32(im.chainId), string(im.nftContract), string(ownership.Owner), string(im.exchangeAddress))
		if err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": tokenId}).Error("erc721.IsApprovedForAll failed")
			return false, domain.ErrCustodyRejected
		}
		return operatorOk, nil
	}

	return true, nil
}

func (im *impl) TransferToken(c ctx.Ctx, tokenId domain.TokenId, from, to domain.Address) error {
	if err := im.repo.TransferToken(c, tokenId, from, to); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"tokenId": tokenId,
			"from":    from,
			"to":      to,
		}).Warn("token transfer rejected")
		return domain.ErrCustodyRejected
	}
	return nil
}

func (im *impl) GetPaymentBalance(c ctx.Ctx, account domain.Address) (*custody.PaymentBalance, error) {
	account = account.ToLower()
	res := &custody.PaymentBalance{
		Address:   account,
		Custodial: "0",
	}

	acc, err := im.repo.GetAccount(c, account)
	if err == nil {
		res.Custodial = acc.Balance
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Error("repo.GetAccount failed")
		return nil, domain.ErrCustodyRejected
	}

	// wallet balance is informational, a failed chain read never fails the call
	if im.erc20 != nil {
		bal, err := im.erc20.BalanceOf(c, int32(im.chainId), string(im.paymentToken), string(account))
		if err != nil {
			c.WithFields(log.Fields{"err": err, "account": account}).Warn("erc20.BalanceOf failed")
			return res, nil
		}
		decimals, err := im.erc20.Decimals(c, int32(im.chainId), string(im.paymentToken))
		if err != nil {
			c.WithField("err", err).Warn("erc20.Decimals failed")
			return res, nil
		}
		res.Wallet = decimal.NewFromBigInt(bal, -int32(decimals)).String()
	}

	return res, nil
}

func (im *impl) TransferPayment(c ctx.Ctx, from, to domain.Address, amount string) error {
	if err := im.repo.TransferPayment(c, from, to, amount); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"from":   from,
			"to":     to,
			"amount": amount,
		}).Warn("payment transfer rejected")
		return domain.ErrCustodyRejected
	}
	return nil
}
