package invitation

// BankAccount is an account guests can send a gift to.
type BankAccount struct {
	Bank          string `yaml:"bank"`
	AccountNumber string `yaml:"account_number"`
	Holder        string `yaml:"holder"`
}

// Accounts lists gift accounts for each side of the family.
type Accounts struct {
	Groom []BankAccount `yaml:"groom"`
	Bride []BankAccount `yaml:"bride"`
}

// Empty reports whether no account is listed for either side.
func (a Accounts) Empty() bool {
	return len(a.Groom) == 0 && len(a.Bride) == 0
}
