package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CustomersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "customers_created_total",
		Help: "Total number of customers successfully created.",
	})

	CustomersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "customers_deleted_total",
		Help: "Total number of customers successfully deleted.",
	})

	CreditsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credits_created_total",
		Help: "Total number of credits successfully created.",
	})
)
