package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssignmentsWonTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_assignments_won_total",
			Help: "Total number of delivery partner assignments written by this instance",
		},
	)

	AssignmentRacesLostTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_assignment_races_lost_total",
			Help: "Total number of assignment attempts that lost to a concurrent writer",
		},
	)
)
