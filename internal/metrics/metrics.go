package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Combat Metrics
var (
	CombatsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombatsStarted,
			Help: HelpTextCombatsStarted,
		},
		[]string{LabelArchetype},
	)

	CombatsEnded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombatsEnded,
			Help: HelpTextCombatsEnded,
		},
		[]string{LabelArchetype, LabelOutcome},
	)

	DamageDealt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDamageDealt,
			Help: HelpTextDamageDealt,
		},
	)

	DamageTaken = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDamageTaken,
			Help: HelpTextDamageTaken,
		},
	)

	WeaponJams = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWeaponJams,
			Help: HelpTextWeaponJams,
		},
	)

	LootAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootAdded,
			Help: HelpTextLootAdded,
		},
		[]string{LabelItem, LabelSource},
	)

	LootLost = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootLost,
			Help: HelpTextLootLost,
		},
		[]string{LabelItem},
	)
)

// Economy Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsRepaired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRepaired,
			Help: HelpTextItemsRepaired,
		},
		[]string{LabelItem},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
		[]string{LabelReason},
	)
)

// Journey Metrics
var (
	JourneySteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJourneySteps,
			Help: HelpTextJourneySteps,
		},
		[]string{LabelOutcome},
	)
)
