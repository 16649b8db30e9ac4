package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/dishswap/exchange-api/base/ctx"
	"github.com/dishswap/exchange-api/base/database/mongoclient"
	"github.com/dishswap/exchange-api/base/database/redisclient"
	"github.com/dishswap/exchange-api/base/log"
	bValidator "github.com/dishswap/exchange-api/base/validator"
	"github.com/dishswap/exchange-api/domain"
	mmiddleware "github.com/dishswap/exchange-api/middleware"
	"github.com/dishswap/exchange-api/service/cache"
	"github.com/dishswap/exchange-api/service/cache/provider"
	"github.com/dishswap/exchange-api/service/cache/provider/primitive"
	redisprovider "github.com/dishswap/exchange-api/service/cache/provider/redis"
	"github.com/dishswap/exchange-api/service/chain"
	"github.com/dishswap/exchange-api/service/chain/contract"
	"github.com/dishswap/exchange-api/service/query"
	admin_repository "github.com/dishswap/exchange-api/stores/admin/repository"
	admin_usecase "github.com/dishswap/exchange-api/stores/admin/usecase"
	auth_delivery "github.com/dishswap/exchange-api/stores/auth/delivery/http"
	auth_middleware "github.com/dishswap/exchange-api/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/dishswap/exchange-api/stores/auth/usecase"
	custody_delivery "github.com/dishswap/exchange-api/stores/custody/delivery/http"
	custody_repository "github.com/dishswap/exchange-api/stores/custody/repository"
	custody_usecase "github.com/dishswap/exchange-api/stores/custody/usecase"
	exchange_delivery "github.com/dishswap/exchange-api/stores/exchange/delivery/http"
	exchange_repository "github.com/dishswap/exchange-api/stores/exchange/repository"
	exchange_usecase "github.com/dishswap/exchange-api/stores/exchange/usecase"
	hc_delivery "github.com/dishswap/exchange-api/stores/healthcheck/delivery/http"
	hc_repo "github.com/dishswap/exchange-api/stores/healthcheck/repository"
	hc_usecase "github.com/dishswap/exchange-api/stores/healthcheck/usecase"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init cache, redis when configured, in-process otherwise
	var cacheProvider provider.Provider
	redisCacheURI := viper.GetString("redis_cache.uri")
	if redisCacheURI == "" {
		context.Info("redis not configured, using in-process cache")
		cacheProvider = primitive.NewPrimitive("exchange", 64)
	} else {
		context.Info("init redis cache")
		redisCachePwd := viper.GetString("redis_cache.password")
		redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
		redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
			PoolMultiplier: redisCachePoolMultiplier,
			Retry:          true,
		})
		cacheProvider = redisprovider.NewRedis(redisCachePool)
	}
	activityCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("redis_cache.activityTtl"),
		Pfx:   "exchange",
		Cache: cacheProvider,
	})

	// init chain service
	networks := viper.Sub("networks")
	rpcs := make(map[int32]string)
	if networks != nil {
		for k := range networks.AllSettings() {
			chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
			rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
			rpcs[chainId] = rpcUrl
		}
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)
	erc20Service := contract.NewErc20(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, cacheProvider)
	adminRepo := admin_repository.New(q)
	askStore := exchange_repository.NewAskStore(q)
	activityStore := exchange_repository.NewActivityStore(q)
	custodyRepo := custody_repository.NewRegistry(q)

	hc := hc_usecase.New(hcRepo)

	adminAddresses := viper.GetStringSlice("admin.addresses")
	staticAdmins := make([]domain.Address, 0, len(adminAddresses))
	for _, a := range adminAddresses {
		staticAdmins = append(staticAdmins, domain.Address(a))
	}
	admin := admin_usecase.New(adminRepo, staticAdmins)

	custodyCfg := &custody_usecase.Config{
		Repo:            custodyRepo,
		ChainId:         domain.ChainId(viper.GetInt32("exchange.chainId")),
		NftContract:     domain.Address(viper.GetString("exchange.nftContract")),
		PaymentToken:    domain.Address(viper.GetString("exchange.paymentToken")),
		ExchangeAddress: domain.Address(viper.GetString("exchange.address")),
	}
	if viper.GetBool("exchange.verifyOnChain") {
		custodyCfg.Erc721 = erc721Service
		custodyCfg.Erc20 = erc20Service
	}
	custody := custody_usecase.New(custodyCfg)

	exchange, err := exchange_usecase.New(context, &exchange_usecase.Config{
		Book:                      exchange_repository.NewAskBook(),
		Repo:                      askStore,
		Activity:                  activityStore,
		Custody:                   custody,
		Admin:                     admin,
		DefaultMaxTradableTokenId: domain.TokenId(viper.GetUint64("exchange.defaultMaxTradableTokenId")),
	})
	if err != nil {
		context.WithField("err", err).Panic("exchange_usecase.New failed")
	}

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"))
	authMiddleware := auth_middleware.New(auth, admin)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	exchange_delivery.New(e, exchange, activityCache, authMiddleware)
	custody_delivery.New(e, custody)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
