package world

// Kind is the closed set of entity types the game knows about.
type Kind int

const (
	KindScene Kind = iota
	KindRoom
	KindPlayer
	KindAntagonist
	KindBreaker
	KindBattery
	KindTelephone
)

func (k Kind) String() string {
	switch k {
	case KindScene:
		return "scene"
	case KindRoom:
		return "room"
	case KindPlayer:
		return "player"
	case KindAntagonist:
		return "antagonist"
	case KindBreaker:
		return "breaker"
	case KindBattery:
		return "battery"
	case KindTelephone:
		return "telephone"
	}
	return "unknown"
}

// Well-known ids and tags.
const (
	IDPlayer    = "player"
	IDScene     = "scene"
	IDTelephone = "telephone"

	TagAntagonist = "antagonist"
	TagBattery    = "battery"
	TagRoom       = "room"
)
