package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pable/go-poker-hud/internal/model"
)

// HandFilter narrows LoadHands and ListHands. The zero value selects every hand.
type HandFilter struct {
	ID     string // a single hand history id
	Player string // hands where this player held a seat
	Limit  int    // the most recently stored hands only; 0 for no limit
}

// ids returns a subquery selecting the row ids of the hands f matches.
func (f HandFilter) ids() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.ID != "" {
		conds = append(conds, "hand_history_id = ?")
		args = append(args, f.ID)
	}
	if f.Player != "" {
		conds = append(conds, `id IN (
			SELECT hp.hand_id FROM hand_players hp
			JOIN players p ON p.id = hp.player_id
			WHERE p.name = ?)`)
		args = append(args, f.Player)
	}
	q := "SELECT id FROM hands"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	limit := -1
	if f.Limit > 0 {
		limit = f.Limit
	}
	q += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)
	return q, args
}

// HandSummary is one row of the stored hand list.
type HandSummary struct {
	ID               string
	TournamentID     string
	Timestamp        string
	TableID          string
	BigBlind         int
	Players          int
	Hero             string
	Board            string
	Pot              int
	PreflopAggressor string
}

// HandExists returns true if a hand with the given hand history id is already stored.
func (db *DB) HandExists(id string) (bool, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM hands WHERE hand_history_id = ?", id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// StoredHandIDs returns which of ids are already stored.
func (db *DB) StoredHandIDs(ids []string) (map[string]bool, error) {
	out := make(map[string]bool)
	const chunk = 500
	for start := 0; start < len(ids); start += chunk {
		part := ids[start:min(start+chunk, len(ids))]
		args := make([]any, len(part))
		for i, id := range part {
			args[i] = id
		}
		err := db.each(
			"SELECT hand_history_id FROM hands WHERE hand_history_id IN ("+placeholders(len(part))+")",
			args,
			func(rows *sql.Rows) error {
				var id string
				if err := rows.Scan(&id); err != nil {
					return err
				}
				out[id] = true
				return nil
			})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// handWriter holds the prepared statements of one InsertHands transaction.
type handWriter struct {
	hand, seat, hole, action, player, playerID *sql.Stmt
	players                                    map[string]int64
}

func prepareHandWriter(tx *sql.Tx) (*handWriter, error) {
	w := &handWriter{players: make(map[string]int64)}
	stmts := []struct {
		dst   **sql.Stmt
		query string
	}{
		{&w.hand, `
			INSERT OR IGNORE INTO hands(
				hand_history_id, tournament_id, played_at, table_id,
				max_seats, button_seat, big_blind, hero, board, pot,
				preflop_aggressor, flop_aggressor, turn_aggressor, river_aggressor,
				preflop_raises, first_raiser, import_id
			) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`},
		{&w.seat, `
			INSERT INTO hand_players(hand_id, player_id, seat, stack, position, bounty)
			VALUES (?, ?, ?, ?, ?, ?)`},
		{&w.hole, `INSERT INTO hole_cards(hand_id, player, cards) VALUES (?, ?, ?)`},
		{&w.action, `
			INSERT INTO actions(
				hand_id, seq, street, player, kind, amount, raise_to, all_in, cards, description,
				pot_before, to_call, bet_faced, pot_when_bet_made
			) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`},
		{&w.player, `INSERT INTO players(name) VALUES (?) ON CONFLICT(name) DO NOTHING`},
		{&w.playerID, `SELECT id FROM players WHERE name = ?`},
	}
	for _, s := range stmts {
		stmt, err := tx.Prepare(s.query)
		if err != nil {
			w.close()
			return nil, err
		}
		*s.dst = stmt
	}
	return w, nil
}

func (w *handWriter) close() {
	for _, s := range []*sql.Stmt{w.hand, w.seat, w.hole, w.action, w.player, w.playerID} {
		if s != nil {
			s.Close()
		}
	}
}

func (w *handWriter) playerRow(name string) (int64, error) {
	if id, ok := w.players[name]; ok {
		return id, nil
	}
	if _, err := w.player.Exec(name); err != nil {
		return 0, err
	}
	var id int64
	if err := w.playerID.QueryRow(name).Scan(&id); err != nil {
		return 0, err
	}
	w.players[name] = id
	return id, nil
}

// write stores h and reports whether it was new.
func (w *handWriter) write(h *model.Hand, importID sql.NullString) (bool, error) {
	res, err := w.hand.Exec(
		h.ID, h.TournamentID, h.Timestamp, h.TableID,
		h.MaxSeats, h.ButtonSeat, h.BigBlind, h.Hero, strings.Join(h.Board, " "), h.Pot,
		h.PreflopAggressor, h.FlopAggressor, h.TurnAggressor, h.RiverAggressor,
		h.PreflopRaises, h.FirstRaiser, importID,
	)
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return false, err
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return false, err
	}

	for _, s := range h.Seats {
		pid, err := w.playerRow(s.Name)
		if err != nil {
			return false, fmt.Errorf("player %q: %w", s.Name, err)
		}
		var pos sql.NullString
		if p, ok := h.Positions[s.Name]; ok {
			pos = sql.NullString{String: p, Valid: true}
		}
		if _, err := w.seat.Exec(rowID, pid, s.Number, s.Stack, pos, s.Bounty); err != nil {
			return false, fmt.Errorf("seat %d: %w", s.Number, err)
		}
	}
	for name, cards := range h.HoleCards {
		if _, err := w.hole.Exec(rowID, name, cards); err != nil {
			return false, fmt.Errorf("hole cards of %q: %w", name, err)
		}
	}
	for _, a := range h.Actions {
		_, err := w.action.Exec(
			rowID, a.Seq, a.Street.String(), a.Player, a.Kind.String(),
			a.Amount, a.RaiseTo, boolInt(a.AllIn), a.Cards, a.Description,
			a.PotBefore, a.ToCall, a.BetFaced, a.PotWhenBetMade,
		)
		if err != nil {
			return false, fmt.Errorf("action %d: %w", a.Seq, err)
		}
	}
	return true, nil
}

// InsertHands stores hands in one transaction and returns how many were new.
// Hands whose id is already stored are left untouched, so re-importing a file
// is a no-op. importID may be empty.
func (db *DB) InsertHands(hands []*model.Hand, importID string) (int, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	w, err := prepareHandWriter(tx)
	if err != nil {
		return 0, err
	}
	defer w.close()

	imp := sql.NullString{String: importID, Valid: importID != ""}
	inserted := 0
	for _, h := range hands {
		if h == nil {
			continue
		}
		isNew, err := w.write(h, imp)
		if err != nil {
			return 0, fmt.Errorf("insert hand %s: %w", h.ID, err)
		}
		if isNew {
			inserted++
		}
	}
	return inserted, tx.Commit()
}

// LoadHands rebuilds the stored hands f matches, oldest first. Actor order is
// recomputed from the action log.
func (db *DB) LoadHands(f HandFilter) ([]*model.Hand, error) {
	sub, args := f.ids()

	var (
		out   []*model.Hand
		byRow = make(map[int64]*model.Hand)
	)
	err := db.each(`
		SELECT id, hand_history_id, tournament_id, played_at, table_id,
			max_seats, button_seat, big_blind, hero, board, pot,
			preflop_aggressor, flop_aggressor, turn_aggressor, river_aggressor,
			preflop_raises, first_raiser
		FROM hands WHERE id IN (`+sub+`) ORDER BY id`, args,
		func(rows *sql.Rows) error {
			var (
				rowID int64
				board string
			)
			h := &model.Hand{
				Positions: make(map[string]string),
				HoleCards: make(map[string]string),
			}
			if err := rows.Scan(
				&rowID, &h.ID, &h.TournamentID, &h.Timestamp, &h.TableID,
				&h.MaxSeats, &h.ButtonSeat, &h.BigBlind, &h.Hero, &board, &h.Pot,
				&h.PreflopAggressor, &h.FlopAggressor, &h.TurnAggressor, &h.RiverAggressor,
				&h.PreflopRaises, &h.FirstRaiser,
			); err != nil {
				return err
			}
			if board != "" {
				h.Board = strings.Fields(board)
			}
			byRow[rowID] = h
			out = append(out, h)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("load hands: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}

	err = db.each(`
		SELECT hp.hand_id, hp.seat, p.name, hp.stack, hp.position, hp.bounty
		FROM hand_players hp JOIN players p ON p.id = hp.player_id
		WHERE hp.hand_id IN (`+sub+`) ORDER BY hp.hand_id, hp.seat`, args,
		func(rows *sql.Rows) error {
			var (
				rowID int64
				s     model.Seat
				pos   sql.NullString
			)
			if err := rows.Scan(&rowID, &s.Number, &s.Name, &s.Stack, &pos, &s.Bounty); err != nil {
				return err
			}
			h := byRow[rowID]
			h.Seats = append(h.Seats, s)
			if pos.Valid {
				h.Positions[s.Name] = pos.String
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("load seats: %w", err)
	}

	err = db.each(`
		SELECT hand_id, player, cards FROM hole_cards
		WHERE hand_id IN (`+sub+`)`, args,
		func(rows *sql.Rows) error {
			var (
				rowID         int64
				player, cards string
			)
			if err := rows.Scan(&rowID, &player, &cards); err != nil {
				return err
			}
			byRow[rowID].HoleCards[player] = cards
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("load hole cards: %w", err)
	}

	err = db.each(`
		SELECT hand_id, seq, street, player, kind, amount, raise_to, all_in, cards, description,
			pot_before, to_call, bet_faced, pot_when_bet_made
		FROM actions WHERE hand_id IN (`+sub+`) ORDER BY hand_id, seq`, args,
		func(rows *sql.Rows) error {
			var (
				rowID        int64
				street, kind string
				allIn        int
				a            model.Action
			)
			if err := rows.Scan(
				&rowID, &a.Seq, &street, &a.Player, &kind, &a.Amount, &a.RaiseTo, &allIn,
				&a.Cards, &a.Description, &a.PotBefore, &a.ToCall, &a.BetFaced, &a.PotWhenBetMade,
			); err != nil {
				return err
			}
			var ok bool
			if a.Street, ok = model.ParseStreet(street); !ok {
				return fmt.Errorf("unknown street %q", street)
			}
			if a.Kind, ok = model.ParseActionKind(kind); !ok {
				return fmt.Errorf("unknown action kind %q", kind)
			}
			a.AllIn = allIn != 0
			h := byRow[rowID]
			h.Actions = append(h.Actions, a)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("load actions: %w", err)
	}

	for _, h := range out {
		h.ResolveActorOrder()
	}
	return out, nil
}

// GetHand returns the stored hand with the given hand history id.
func (db *DB) GetHand(id string) (*model.Hand, bool, error) {
	hands, err := db.LoadHands(HandFilter{ID: id})
	if err != nil {
		return nil, false, err
	}
	if len(hands) == 0 {
		return nil, false, nil
	}
	return hands[0], true, nil
}

// ListHands returns summaries of the hands f matches, newest first.
func (db *DB) ListHands(f HandFilter) ([]HandSummary, error) {
	sub, args := f.ids()
	var out []HandSummary
	err := db.each(`
		SELECT h.hand_history_id, h.tournament_id, h.played_at, h.table_id, h.big_blind,
			(SELECT COUNT(1) FROM hand_players hp WHERE hp.hand_id = h.id),
			h.hero, h.board, h.pot, h.preflop_aggressor
		FROM hands h WHERE h.id IN (`+sub+`) ORDER BY h.id DESC`, args,
		func(rows *sql.Rows) error {
			var s HandSummary
			if err := rows.Scan(
				&s.ID, &s.TournamentID, &s.Timestamp, &s.TableID, &s.BigBlind,
				&s.Players, &s.Hero, &s.Board, &s.Pot, &s.PreflopAggressor,
			); err != nil {
				return err
			}
			out = append(out, s)
			return nil
		})
	return out, err
}

// PlayerNames returns every player holding a seat in at least one stored hand, sorted.
func (db *DB) PlayerNames() ([]string, error) {
	var out []string
	err := db.each(`
		SELECT p.name FROM players p
		WHERE EXISTS (SELECT 1 FROM hand_players hp WHERE hp.player_id = p.id)
		ORDER BY p.name`, nil,
		func(rows *sql.Rows) error {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			out = append(out, name)
			return nil
		})
	return out, err
}

// QueryRaw runs an arbitrary query and returns its column names and rows as strings.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

// each runs query and calls fn for every row. Rows are closed before it
// returns, which the single-connection pool relies on.
func (db *DB) each(query string, args []any, fn func(*sql.Rows) error) error {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
