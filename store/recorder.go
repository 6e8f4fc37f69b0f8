// recorder
/*
Copyright 2021 Bruce Golden and Matt Spangler

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files (the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions:
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/APSIMInitiative/ApsimX-sub000/stock"
)

// Recorder writes the daily state of every group and paddock of a run to
// a SQLite database
type Recorder struct {
	conn  *sqlx.DB
	runID int64
}

// GroupRow is a stock.GroupSummary stamped with its run and day
type GroupRow struct {
	RunID int64 `db:"run_id"`
	Day   int   `db:"day"`
	Doy   int   `db:"doy"`
	stock.GroupSummary
}

type PaddockRow struct {
	RunID       int64   `db:"run_id"`
	Day         int     `db:"day"`
	Paddock     string  `db:"paddock"`
	Head        int     `db:"head"`
	MassPerHa   float64 `db:"mass_per_ha"`
	MeanWeight  float64 `db:"mean_weight"`
	DSEPerHa    float64 `db:"dse_per_ha"`
	HerbageLeft float64 `db:"herbage_left"`
	Removed     float64 `db:"herbage_removed"`
	SuppEaten   float64 `db:"supp_eaten"`
}

// Open opens or creates the database at path and starts a new run under
// the given label and seed
func Open(path, label string, seed int64) (*Recorder, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	r := &Recorder{conn: conn}
	if err := r.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	res, err := conn.Exec("INSERT INTO runs (label, seed) VALUES (?, ?)", label, seed)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("new run: %w", err)
	}
	if r.runID, err = res.LastInsertId(); err != nil {
		conn.Close()
		return nil, err
	}
	return r, nil
}

func (r *Recorder) RunID() int64 { return r.runID }

func (r *Recorder) Close() error {
	return r.conn.Close()
}

func (r *Recorder) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		label TEXT NOT NULL,
		seed INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS group_days (
		run_id INTEGER NOT NULL,
		day INTEGER NOT NULL,
		doy INTEGER NOT NULL,
		grp INTEGER NOT NULL,
		paddock TEXT NOT NULL,
		tag INTEGER NOT NULL,
		breed TEXT NOT NULL,
		sex TEXT NOT NULL,
		young INTEGER NOT NULL,
		number INTEGER NOT NULL,
		age_days INTEGER NOT NULL,
		repro TEXT NOT NULL,
		lactation INTEGER NOT NULL,
		no_young INTEGER NOT NULL,
		pregnancy INTEGER NOT NULL,
		live_weight REAL NOT NULL,
		base_weight REAL NOT NULL,
		weight_change REAL NOT NULL,
		condition REAL NOT NULL,
		fleece_weight REAL NOT NULL,
		fibre_diam REAL NOT NULL,
		milk_yield REAL NOT NULL,
		pot_intake REAL NOT NULL,
		herbage_dmi REAL NOT NULL,
		supp_dmi REAL NOT NULL,
		me_intake REAL NOT NULL,
		digestibility REAL NOT NULL,
		rdp_effect REAL NOT NULL,
		methane REAL NOT NULL,
		faecal_n REAL NOT NULL,
		urine_n REAL NOT NULL,
		dse REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS paddock_days (
		run_id INTEGER NOT NULL,
		day INTEGER NOT NULL,
		paddock TEXT NOT NULL,
		head INTEGER NOT NULL,
		mass_per_ha REAL NOT NULL,
		mean_weight REAL NOT NULL,
		dse_per_ha REAL NOT NULL,
		herbage_left REAL NOT NULL,
		herbage_removed REAL NOT NULL,
		supp_eaten REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_groups_run_day ON group_days(run_id, day);
	CREATE INDEX IF NOT EXISTS idx_paddocks_run_day ON paddock_days(run_id, day);
	`
	_, err := r.conn.Exec(schema)
	return err
}

const insertGroup = `INSERT INTO group_days
	(run_id, day, doy, grp, paddock, tag, breed, sex, young, number, age_days,
	 repro, lactation, no_young, pregnancy, live_weight, base_weight, weight_change,
	 condition, fleece_weight, fibre_diam, milk_yield, pot_intake, herbage_dmi,
	 supp_dmi, me_intake, digestibility, rdp_effect, methane, faecal_n, urine_n, dse)
	VALUES
	(:run_id, :day, :doy, :grp, :paddock, :tag, :breed, :sex, :young, :number, :age_days,
	 :repro, :lactation, :no_young, :pregnancy, :live_weight, :base_weight, :weight_change,
	 :condition, :fleece_weight, :fibre_diam, :milk_yield, :pot_intake, :herbage_dmi,
	 :supp_dmi, :me_intake, :digestibility, :rdp_effect, :methane, :faecal_n, :urine_n, :dse)`

const insertPaddock = `INSERT INTO paddock_days
	(run_id, day, paddock, head, mass_per_ha, mean_weight, dse_per_ha,
	 herbage_left, herbage_removed, supp_eaten)
	VALUES
	(:run_id, :day, :paddock, :head, :mass_per_ha, :mean_weight, :dse_per_ha,
	 :herbage_left, :herbage_removed, :supp_eaten)`

// RecordDay writes one day of the stock list. Call it after Dynamics and
// before the paddocks' EndDay so that the day's removal is still held.
func (r *Recorder) RecordDay(day, doy int, s *stock.StockList) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, g := range s.Summaries() {
		row := GroupRow{RunID: r.runID, Day: day, Doy: doy, GroupSummary: g}
		if _, err := tx.NamedExec(insertGroup, row); err != nil {
			return fmt.Errorf("insert group %d day %d: %w", g.Group, day, err)
		}
	}
	for _, p := range s.Paddocks {
		t := s.PaddockTotals(p)
		row := PaddockRow{
			RunID:       r.runID,
			Day:         day,
			Paddock:     p.Name,
			Head:        t.Head,
			MassPerHa:   t.MassPerHa,
			MeanWeight:  t.MeanWeight,
			DSEPerHa:    t.DSEPerHa,
			HerbageLeft: t.HerbageLeft,
			Removed:     p.HerbageRemoved(),
			SuppEaten:   p.SupplementRemoved(),
		}
		if _, err := tx.NamedExec(insertPaddock, row); err != nil {
			return fmt.Errorf("insert paddock %s day %d: %w", p.Name, day, err)
		}
	}
	return tx.Commit()
}

// Groups reads back the group rows of this run for one day
func (r *Recorder) Groups(day int) ([]GroupRow, error) {
	var rows []GroupRow
	err := r.conn.Select(&rows, "SELECT * FROM group_days WHERE run_id = ? AND day = ? ORDER BY grp, young", r.runID, day)
	return rows, err
}

func (r *Recorder) Paddocks(day int) ([]PaddockRow, error) {
	var rows []PaddockRow
	err := r.conn.Select(&rows, "SELECT * FROM paddock_days WHERE run_id = ? AND day = ? ORDER BY paddock", r.runID, day)
	return rows, err
}

// LiveWeightSeries is the mean live weight per head of one group (young
// excluded) over the run, in day order
func (r *Recorder) LiveWeightSeries(group int) ([]float64, error) {
	var wts []float64
	err := r.conn.Select(&wts, "SELECT live_weight FROM group_days WHERE run_id = ? AND grp = ? AND young = 0 ORDER BY day", r.runID, group)
	return wts, err
}
