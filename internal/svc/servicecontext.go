package svc

import (
	"log"

	"github.com/zeromicro/go-zero/core/collection"

	"markethealth-api/internal/cache"
	"markethealth-api/internal/config"
	"markethealth-api/pkg/charts"
	"markethealth-api/pkg/dataset"
)

type ServiceContext struct {
	Config    config.Config
	Loader    *dataset.Loader
	Dashboard *charts.Config
	TTL       cache.TTLSet

	// Figures caches rendered figure and table payloads per view+range so
	// repeated interactions skip rebuilding unchanged charts.
	Figures *collection.Cache
}

func NewServiceContext(c config.Config) *ServiceContext {
	dash := c.Dashboard.Value
	if dash == nil {
		dash = charts.DefaultConfig()
	}

	ttl := cache.NewTTLSet(c.TTL)
	figures, err := collection.NewCache(ttl.Medium, collection.WithName("figures"))
	if err != nil {
		log.Fatalf("failed to init figure cache: %v", err)
	}

	return &ServiceContext{
		Config:    c,
		Loader:    dataset.NewLoader(c.DataFilePath()),
		Dashboard: dash,
		TTL:       ttl,
		Figures:   figures,
	}
}
