package game

// Loot source used for items found on the road
const LootSourceJourney = "journey"

// ==================== Error Messages ====================

const (
	ErrMsgCombatActiveFmt     = "%w: cannot %s during combat"
	ErrMsgLoadoutItemFmt      = "starting loadout %s: %w"
	ErrMsgLoadoutNoRoomFmt    = "starting loadout %s: %w"
	ErrMsgUnknownArchetypeFmt = "%w: %s"
	ErrMsgNotConsumableFmt    = "%w: %s"
	ErrMsgItemNotFoundFmt     = "%w: %s"
)

// ==================== Log Messages ====================

const (
	LogMsgGameCreated       = "Game created"
	LogMsgItemEquipped      = "Item equipped"
	LogMsgItemUnequipped    = "Item unequipped"
	LogMsgItemUsed          = "Item used"
	LogMsgJourneyStep       = "Journey step"
	LogMsgJourneyLoot       = "Found loot on the road"
	LogMsgReturnedToStation = "Returned to station"
	LogMsgCombatStarted     = "Combat started"
	LogMsgCombatAction      = "Combat action resolved"
	LogMsgCombatEnded       = "Combat ended"
	LogMsgPlayerRevived     = "Player revived at station"
	LogMsgLootFailed        = "Loot could not be created"
	LogMsgPublishFailed     = "Failed to publish game event"
)
