package economy

// Wallet holds the player's money. Spend is the only way down and it is
// guarded, so the balance never goes negative.
type Wallet struct {
	balance int
}

// NewWallet creates a wallet with a starting balance
func NewWallet(balance int) *Wallet {
	return &Wallet{balance: max(balance, 0)}
}

// Balance returns the current balance
func (w *Wallet) Balance() int {
	return w.balance
}

// HasEnough reports whether amount can be spent
func (w *Wallet) HasEnough(amount int) bool {
	return amount >= 0 && w.balance >= amount
}

// Spend deducts amount if affordable. Otherwise nothing changes and it returns false.
func (w *Wallet) Spend(amount int) bool {
	if !w.HasEnough(amount) {
		return false
	}
	w.balance -= amount
	return true
}

// Add credits amount. Negative amounts are ignored.
func (w *Wallet) Add(amount int) {
	if amount > 0 {
		w.balance += amount
	}
}
