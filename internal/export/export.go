package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"omnisite/internal/models"
	"omnisite/internal/storage"
)

// Archive is the full record set written by an export
type Archive struct {
	ExportedAt time.Time             `json:"exported_at"`
	Settings   models.Settings       `json:"settings"`
	Sites      []models.Site         `json:"sites"`
	Placements []models.Placement    `json:"placements"`
	Doses      []models.Dose         `json:"doses"`
	Symptoms   []models.SymptomEntry `json:"symptoms"`
	Ratings    []models.Rating       `json:"ratings"`
	Notes      []models.Note         `json:"notes"`
	Goals      []models.Goal         `json:"goals"`
}

// Collect reads every record type from the store. Sites, placements, and
// goals include archived and soft-deleted rows; the day-ranged record types
// export live rows only.
func Collect(store storage.Provider) (Archive, error) {
	archive := Archive{ExportedAt: time.Now()}

	var err error
	if archive.Settings, err = store.GetSettings(); err != nil {
		return archive, fmt.Errorf("failed to read settings: %w", err)
	}
	if archive.Sites, err = store.GetAllSites(true, true); err != nil {
		return archive, fmt.Errorf("failed to read sites: %w", err)
	}
	if archive.Placements, err = store.GetPlacements("0000-01-01", "9999-12-31", true); err != nil {
		return archive, fmt.Errorf("failed to read placements: %w", err)
	}
	if archive.Doses, err = store.GetDoses("0000-01-01", "9999-12-31"); err != nil {
		return archive, fmt.Errorf("failed to read doses: %w", err)
	}
	if archive.Symptoms, err = store.GetSymptomEntries("0000-01-01", "9999-12-31"); err != nil {
		return archive, fmt.Errorf("failed to read symptom entries: %w", err)
	}
	if archive.Ratings, err = store.GetRatings("0000-01-01", "9999-12-31"); err != nil {
		return archive, fmt.Errorf("failed to read ratings: %w", err)
	}
	if archive.Notes, err = store.GetNotes("0000-01-01", "9999-12-31"); err != nil {
		return archive, fmt.Errorf("failed to read notes: %w", err)
	}
	if archive.Goals, err = store.GetAllGoals(true); err != nil {
		return archive, fmt.Errorf("failed to read goals: %w", err)
	}

	return archive, nil
}

// WriteJSON writes the archive as a single indented JSON file
func WriteJSON(archive Archive, path string) error {
	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal archive: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}

// WriteCSV writes one CSV file per record type into dir
func WriteCSV(archive Archive, dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	files := []struct {
		name  string
		write func(*csv.Writer) error
	}{
		{"placements.csv", func(w *csv.Writer) error { return writePlacements(w, archive.Placements) }},
		{"sites.csv", func(w *csv.Writer) error { return writeSites(w, archive.Sites) }},
		{"doses.csv", func(w *csv.Writer) error { return writeDoses(w, archive.Doses) }},
		{"symptoms.csv", func(w *csv.Writer) error { return writeSymptoms(w, archive.Symptoms) }},
		{"ratings.csv", func(w *csv.Writer) error { return writeRatings(w, archive.Ratings) }},
		{"notes.csv", func(w *csv.Writer) error { return writeNotes(w, archive.Notes) }},
		{"goals.csv", func(w *csv.Writer) error { return writeGoals(w, archive.Goals) }},
	}

	for _, f := range files {
		if err := writeCSVFile(filepath.Join(dir, f.name), f.write); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	return nil
}

func writeCSVFile(path string, write func(*csv.Writer) error) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := write(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func optional(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func writePlacements(w *csv.Writer, placements []models.Placement) error {
	if err := w.Write([]string{"id", "site", "day", "note", "photo_ref", "created_at", "deleted_at"}); err != nil {
		return err
	}
	for _, p := range placements {
		row := []string{p.ID, p.Site, p.Day, p.Note, p.PhotoRef, p.CreatedAt.Format(time.RFC3339), optional(p.DeletedAt)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeSites(w *csv.Writer, sites []models.Site) error {
	if err := w.Write([]string{"id", "label", "body_region", "side", "created_at", "archived_at", "deleted_at"}); err != nil {
		return err
	}
	for _, s := range sites {
		row := []string{s.ID, s.Label, string(s.BodyRegion), string(s.Side), s.CreatedAt.Format(time.RFC3339), optional(s.ArchivedAt), optional(s.DeletedAt)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeDoses(w *csv.Writer, doses []models.Dose) error {
	if err := w.Write([]string{"id", "medication", "amount", "unit", "day", "note", "created_at", "deleted_at"}); err != nil {
		return err
	}
	for _, d := range doses {
		row := []string{d.ID, d.Medication, strconv.FormatFloat(d.Amount, 'g', -1, 64), d.Unit, d.Day, d.Note, d.CreatedAt.Format(time.RFC3339), optional(d.DeletedAt)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeSymptoms(w *csv.Writer, entries []models.SymptomEntry) error {
	if err := w.Write([]string{"id", "symptom", "severity", "site", "day", "note", "created_at", "deleted_at"}); err != nil {
		return err
	}
	for _, e := range entries {
		row := []string{e.ID, e.Symptom, strconv.Itoa(e.Severity), e.Site, e.Day, e.Note, e.CreatedAt.Format(time.RFC3339), optional(e.DeletedAt)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeRatings(w *csv.Writer, ratings []models.Rating) error {
	if err := w.Write([]string{"id", "site", "score", "day", "note", "created_at", "deleted_at"}); err != nil {
		return err
	}
	for _, r := range ratings {
		row := []string{r.ID, r.Site, strconv.Itoa(r.Score), r.Day, r.Note, r.CreatedAt.Format(time.RFC3339), optional(r.DeletedAt)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeNotes(w *csv.Writer, notes []models.Note) error {
	if err := w.Write([]string{"id", "site", "day", "body", "created_at", "deleted_at"}); err != nil {
		return err
	}
	for _, n := range notes {
		row := []string{n.ID, n.Site, n.Day, n.Body, n.CreatedAt.Format(time.RFC3339), optional(n.DeletedAt)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeGoals(w *csv.Writer, goals []models.Goal) error {
	if err := w.Write([]string{"id", "kind", "target", "created_at", "achieved_at", "deleted_at"}); err != nil {
		return err
	}
	for _, g := range goals {
		row := []string{g.ID, string(g.Kind), strconv.Itoa(g.Target), g.CreatedAt.Format(time.RFC3339), optional(g.AchievedAt), optional(g.DeletedAt)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
