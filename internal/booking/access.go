package booking

import "club-booking/internal/data/entity"

// RoomAllowed: VIP tariffs may use every room, other tariffs only non-VIP rooms.
func RoomAllowed(t entity.Tariff, r entity.Room) bool {
	return t.VIP || !r.VIP
}

func AllowedRooms(t entity.Tariff, rooms []entity.Room) []entity.Room {
	allowed := make([]entity.Room, 0, len(rooms))
	for _, r := range rooms {
		if RoomAllowed(t, r) {
			allowed = append(allowed, r)
		}
	}
	return allowed
}

// ReconcileRoom keeps the selected room while the tariff allows it. Otherwise it falls back
// to the first allowed room and reports changed=true. ok is false when nothing is allowed.
func ReconcileRoom(t entity.Tariff, selected int64, rooms []entity.Room) (room entity.Room, changed bool, ok bool) {
	for _, r := range rooms {
		if r.ID == selected && RoomAllowed(t, r) {
			return r, false, true
		}
	}
	allowed := AllowedRooms(t, rooms)
	if len(allowed) == 0 {
		return entity.Room{}, selected != 0, false
	}
	return allowed[0], true, true
}

// RoomsOf returns the distinct rooms of the given PCs in first-seen order.
func RoomsOf(pcs []entity.PC) []entity.Room {
	seen := make(map[int64]struct{})
	var rooms []entity.Room
	for _, pc := range pcs {
		if _, ok := seen[pc.Room.ID]; ok {
			continue
		}
		seen[pc.Room.ID] = struct{}{}
		rooms = append(rooms, pc.Room)
	}
	return rooms
}
