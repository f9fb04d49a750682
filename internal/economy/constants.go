package economy

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgNotInStockFmt         = "%s: %w"
	ErrMsgInsufficientFundsFmt  = "cannot afford %s (cost: %d, balance: %d): %w"
	ErrMsgInventoryFullFmt      = "no room for %s: %w"
	ErrMsgItemNotInInventoryFmt = "item %s not in inventory: %w"
	ErrMsgItemNotOwnedFmt       = "item %s is not in inventory or equipped: %w"
	ErrMsgNotRepairableFmt      = "%s: %w"
	ErrMsgNoRepairNeededFmt     = "%s is at full durability: %w"
	ErrMsgRepairUnaffordableFmt = "cannot afford repair of %s (cost: %d, balance: %d): %w"
	ErrMsgNothingToSell         = "nothing to sell"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgBuyCalled     = "Buy called"
	LogMsgItemPurchased = "Item purchased"
	LogMsgSellCalled    = "Sell called"
	LogMsgItemsSold     = "Items sold"
	LogMsgRepairCalled  = "Repair called"
	LogMsgItemRepaired  = "Item repaired"
	LogMsgPublishFailed = "Failed to publish economy event"
)
