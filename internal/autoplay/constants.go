package autoplay

// Policy thresholds
const (
	HungerThreshold    = 40
	ThirstThreshold    = 40
	HealThreshold      = 50
	FleeHealthPercent  = 20
	RepairBelowPercent = 60
	MaxActionsPerFight = 200
	SupplyTarget       = 3
)

// Items the policy keeps in stock and sells
var (
	FoodKeys   = []string{"bread"}
	WaterKeys  = []string{"water_bottle", "energy_drink"}
	HealKeys   = []string{"medkit", "bandage"}
	SellKeys   = []string{"mutant_tail", "scrap_metal", "medusa_artifact"}
	SupplyKeys = []string{"bread", "water_bottle", "bandage", "ammo_9x18"}
)

// Log messages
const (
	LogMsgRunStarted    = "Autoplay started"
	LogMsgRunFinished   = "Autoplay finished"
	LogMsgResupply      = "Resupplying at station"
	LogMsgCombatStuck   = "Combat exceeded action limit"
	LogMsgActionSkipped = "Action rejected"
)
