package hotel

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// dateLayout is how calendar dates are stored; reservations carry dates, not
// instants.
const dateLayout = "2006-01-02"

// Store persists the whole hotel state to a single SQLite file. Every save
// rewrites the full dataset inside one transaction, so the file never holds a
// partially applied mutation even if the process dies mid-write.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the store at path and applies schema
// migrations.
func NewStore(path string) (*Store, error) {
	// Ensure directory exists so first-run succeeds.
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("enable WAL: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return err
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
            number INTEGER PRIMARY KEY,
            type TEXT NOT NULL,
            available BOOLEAN NOT NULL DEFAULT 1,
            has_ac BOOLEAN NOT NULL,
            has_wifi BOOLEAN NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS guests (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL UNIQUE,
            name TEXT NOT NULL,
            phone TEXT NOT NULL,
            email TEXT NOT NULL,
            id_proof TEXT NOT NULL,
            address TEXT NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS reservations (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL UNIQUE,
            guest_id TEXT NOT NULL REFERENCES guests(id),
            room_number INTEGER NOT NULL REFERENCES rooms(number),
            check_in DATE NOT NULL,
            check_out DATE NOT NULL,
            status TEXT NOT NULL,
            total_amount REAL NOT NULL,
            advance_paid REAL NOT NULL,
            booking_date DATE NOT NULL
        );`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, strconv.Itoa(schemaVersion)); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

// Load reads the persisted snapshot. A store that has never been seeded comes
// back with no rooms; the caller decides whether to initialize the default
// catalog.
func (s *Store) Load() (*Snapshot, error) {
	snap := &Snapshot{}

	var err error
	if snap.ReservationCounter, err = s.metaInt("reservation_counter", reservationCounterSeed); err != nil {
		return nil, fmt.Errorf("load reservation counter: %w", err)
	}
	if snap.GuestCounter, err = s.metaInt("guest_counter", guestCounterSeed); err != nil {
		return nil, fmt.Errorf("load guest counter: %w", err)
	}

	rows, err := s.db.Query(`SELECT number,type,available,has_ac,has_wifi FROM rooms ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r Room
		var typ string
		if err := rows.Scan(&r.Number, &typ, &r.Available, &r.HasAC, &r.HasWifi); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		r.Type = RoomType(typ)
		snap.Rooms = append(snap.Rooms, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	guestRows, err := s.db.Query(`SELECT id,name,phone,email,id_proof,address FROM guests ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load guests: %w", err)
	}
	defer guestRows.Close()
	for guestRows.Next() {
		var g Guest
		if err := guestRows.Scan(&g.ID, &g.Name, &g.Phone, &g.Email, &g.IDProof, &g.Address); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		snap.Guests = append(snap.Guests, &g)
	}
	if err := guestRows.Err(); err != nil {
		return nil, fmt.Errorf("load guests: %w", err)
	}

	resRows, err := s.db.Query(`SELECT id,guest_id,room_number,check_in,check_out,status,total_amount,advance_paid,booking_date
        FROM reservations ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	defer resRows.Close()
	for resRows.Next() {
		var rec ReservationRecord
		var checkIn, checkOut, booked, status string
		if err := resRows.Scan(&rec.ID, &rec.GuestID, &rec.RoomNumber, &checkIn, &checkOut,
			&status, &rec.TotalAmount, &rec.AdvancePaid, &booked); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		rec.Status = Status(status)
		if rec.CheckIn, err = time.Parse(dateLayout, checkIn); err != nil {
			return nil, fmt.Errorf("parse check-in date of %s: %w", rec.ID, err)
		}
		if rec.CheckOut, err = time.Parse(dateLayout, checkOut); err != nil {
			return nil, fmt.Errorf("parse check-out date of %s: %w", rec.ID, err)
		}
		if rec.BookingDate, err = time.Parse(dateLayout, booked); err != nil {
			return nil, fmt.Errorf("parse booking date of %s: %w", rec.ID, err)
		}
		snap.Reservations = append(snap.Reservations, &rec)
	}
	if err := resRows.Err(); err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	return snap, nil
}

// Save replaces the entire persisted dataset with snap. Delete and re-insert
// happen in one transaction; a failure rolls the file back to the previous
// snapshot.
func (s *Store) Save(snap *Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	// Children first so foreign keys stay satisfied.
	for _, table := range []string{"reservations", "guests", "rooms"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, r := range snap.Rooms {
		if _, err := tx.Exec(`INSERT INTO rooms(number,type,available,has_ac,has_wifi) VALUES(?,?,?,?,?)`,
			r.Number, string(r.Type), r.Available, r.HasAC, r.HasWifi); err != nil {
			return fmt.Errorf("save room %d: %w", r.Number, err)
		}
	}

	for _, g := range snap.Guests {
		if _, err := tx.Exec(`INSERT INTO guests(id,name,phone,email,id_proof,address) VALUES(?,?,?,?,?,?)`,
			g.ID, g.Name, g.Phone, g.Email, g.IDProof, g.Address); err != nil {
			return fmt.Errorf("save guest %s: %w", g.ID, err)
		}
	}

	for _, rec := range snap.Reservations {
		if _, err := tx.Exec(`INSERT INTO reservations(id,guest_id,room_number,check_in,check_out,status,total_amount,advance_paid,booking_date)
            VALUES(?,?,?,?,?,?,?,?,?)`,
			rec.ID, rec.GuestID, rec.RoomNumber,
			rec.CheckIn.Format(dateLayout), rec.CheckOut.Format(dateLayout),
			string(rec.Status), rec.TotalAmount, rec.AdvancePaid,
			rec.BookingDate.Format(dateLayout)); err != nil {
			return fmt.Errorf("save reservation %s: %w", rec.ID, err)
		}
	}

	counters := []struct {
		key   string
		value int
	}{
		{"reservation_counter", snap.ReservationCounter},
		{"guest_counter", snap.GuestCounter},
	}
	for _, c := range counters {
		if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES(?,?)
            ON CONFLICT(key) DO UPDATE SET value=excluded.value`, c.key, strconv.Itoa(c.value)); err != nil {
			return fmt.Errorf("save %s: %w", c.key, err)
		}
	}

	return tx.Commit()
}

// metaInt reads an integer from the meta table, falling back when the key has
// never been written.
func (s *Store) metaInt(key string, fallback int) (int, error) {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key=?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("meta %s holds %q: %w", key, raw, err)
	}
	return n, nil
}
