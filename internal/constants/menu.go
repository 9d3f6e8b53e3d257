package constants

const (
	MenuMin = 1
	MenuMax = 5
)

var MenuLabels = []string{
	"Check Balance",
	"Deposit Money",
	"Withdraw Money",
	"Transaction History",
	"Exit",
}
