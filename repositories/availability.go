package repositories

// availableRoomIDsSQL selects rooms that still have free capacity inside a
// stay window. Bookings overlapping the window are counted per room and
// subtracted from the room's quantity; two stays overlap when each starts
// no later than the other ends. Bind order: date_to, date_from.
const availableRoomIDsSQL = `
WITH rooms_count AS (
    SELECT room_id, COUNT(*) AS rooms_booked
    FROM bookings
    WHERE date_from <= ? AND date_to >= ?
    GROUP BY room_id
),
rooms_left_table AS (
    SELECT rooms.id AS room_id,
           rooms.quantity - COALESCE(rooms_count.rooms_booked, 0) AS rooms_left
    FROM rooms
    LEFT JOIN rooms_count ON rooms.id = rooms_count.room_id
)
SELECT room_id
FROM rooms_left_table
WHERE rooms_left > 0`
