package engine

// Room identifies one of the four rooms of the house
type Room int

const (
	Bathroom Room = iota
	Kitchen
	Bedroom
	LivingRoom

	// RoomCount is the number of rooms; valid rooms are [0, RoomCount)
	RoomCount = 4
)

var roomNames = [RoomCount]string{"Bathroom", "Kitchen", "Bedroom", "Living Room"}

var roomKeys = [RoomCount]string{"bathroom", "kitchen", "bedroom", "living"}

func (r Room) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return roomNames[r]
}

// Key returns the short lowercase identifier used in config and asset file names
func (r Room) Key() string {
	if !r.Valid() {
		return ""
	}
	return roomKeys[r]
}

// Valid reports whether r is inside [0, RoomCount)
func (r Room) Valid() bool {
	return r >= 0 && r < RoomCount
}

// ParseRoom resolves a room key or display name
func ParseRoom(s string) (Room, bool) {
	for i := Room(0); i < RoomCount; i++ {
		if s == roomKeys[i] || s == roomNames[i] {
			return i, true
		}
	}
	return 0, false
}

// clampRoom keeps r inside [0, RoomCount)
func clampRoom(r int) Room {
	if r < 0 {
		return 0
	}
	if r >= RoomCount {
		return RoomCount - 1
	}
	return Room(r)
}
