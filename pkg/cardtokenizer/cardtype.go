package cardtokenizer

// CardType is a single-letter card brand code understood by the PAYONE
// hosted-fields script, used for automatic card type detection and for
// per-brand field lengths.
type CardType string

const (
	CardTypeVisa                 CardType = "V"
	CardTypeMastercard           CardType = "M"
	CardTypeAmericanExpress      CardType = "A"
	CardTypeDinersClub           CardType = "D"
	CardTypeJCB                  CardType = "J"
	CardTypeMaestroInternational CardType = "O"
	CardTypeChinaUnionPay        CardType = "P"
	CardTypeUATP                 CardType = "U"
	CardTypeGirocard             CardType = "G"
)
