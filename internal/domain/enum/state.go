package enum

// State represents a Nigerian state of residence for a customer.
// The string values are the wire contract shared with the console UI.
type State string

const (
	StateAbia       State = "Abia"
	StateAdamawa    State = "Adamawa"
	StateAkwaIbom   State = "Akwa Ibom"
	StateAnambra    State = "Anambra"
	StateBauchi     State = "Bauchi"
	StateBayelsa    State = "Bayelsa"
	StateBenue      State = "Benue"
	StateBorno      State = "Borno"
	StateCrossRiver State = "Cross River"
	StateDelta      State = "Delta"
	StateEbonyi     State = "Ebonyi"
	StateEdo        State = "Edo"
	StateEkiti      State = "Ekiti"
	StateEnugu      State = "Enugu"
	StateGombe      State = "Gombe"
	StateImo        State = "Imo"
	StateJigawa     State = "Jigawa"
	StateKaduna     State = "Kaduna"
	StateKano       State = "Kano"
	StateKatsina    State = "Katsina"
	StateKebbi      State = "Kebbi"
	StateKogi       State = "Kogi"
	StateKwara      State = "Kwara"
	StateLagos      State = "Lagos"
	StateNasarawa   State = "Nasarawa"
	StateNiger      State = "Niger"
	StateOgun       State = "Ogun"
	StateOndo       State = "Ondo"
	StateOsun       State = "Osun"
	StateOyo        State = "Oyo"
	StatePlateau    State = "Plateau"
	StateRivers     State = "Rivers"
	StateSokoto     State = "Sokoto"
	StateTaraba     State = "Taraba"
	StateYobe       State = "Yobe"
	StateZamfara    State = "Zamfara"
	StateFCT        State = "FCT"
)

// States lists every recognized state in display order.
var States = []State{
	StateAbia, StateAdamawa, StateAkwaIbom, StateAnambra, StateBauchi,
	StateBayelsa, StateBenue, StateBorno, StateCrossRiver, StateDelta,
	StateEbonyi, StateEdo, StateEkiti, StateEnugu, StateGombe, StateImo,
	StateJigawa, StateKaduna, StateKano, StateKatsina, StateKebbi, StateKogi,
	StateKwara, StateLagos, StateNasarawa, StateNiger, StateOgun, StateOndo,
	StateOsun, StateOyo, StatePlateau, StateRivers, StateSokoto, StateTaraba,
	StateYobe, StateZamfara, StateFCT,
}

func (s State) String() string {
	return string(s)
}

// IsValid reports whether s is one of the recognized states.
func (s State) IsValid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}
