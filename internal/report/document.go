// internal/report/document.go
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tcc_companion/internal/model"
)

// The report is compiled into an explicit document model first and rendered
// to PDF separately, so content and layout stay independently testable.

type Block interface{ isBlock() }

type Heading struct {
	Text  string
	Level int // 1 = section title, 2 = sub-heading
}

type KeyValue struct {
	Key   string
	Value string
}

type KeyValueBlock struct {
	Pairs []KeyValue
}

type TableBlock struct {
	Columns []string
	Rows    [][]string
}

type Paragraph struct {
	Text string
}

func (Heading) isBlock()       {}
func (KeyValueBlock) isBlock() {}
func (TableBlock) isBlock()    {}
func (Paragraph) isBlock()     {}

type Document struct {
	Title     string
	PatientID string
	Generated time.Time
	Blocks    []Block
}

// NoDataLine is rendered for a section with zero records, so the report
// structure stays identical across patients.
const NoDataLine = "Aucune donnée."

// Section-specific record counts: the most recent N rows of each kind make
// it into the report.
const (
	sleepNights      = 5
	activityEntries  = 7
	restructurations = 3
)

// Compile aggregates the session tables into a printable document. Every
// section is always present; a section with no records gets an explicit
// "no data" line instead of being omitted.
func Compile(patientID string, records map[model.RecordKind][]model.Record, now time.Time) *Document {
	doc := &Document{
		Title:     "Rapport de suivi thérapeutique",
		PatientID: patientID,
		Generated: now,
	}
	doc.add(Heading{Text: doc.Title, Level: 1})
	doc.add(KeyValueBlock{Pairs: []KeyValue{
		{Key: "Patient", Value: patientID},
		{Key: "Généré le", Value: now.Format("02/01/2006 15:04")},
	}})

	doc.compileScales(records[model.KindScale])
	doc.compileSleep(records[model.KindSleep])
	doc.compileActivities(records[model.KindActivity])
	doc.compileRestructuring(records[model.KindRestructuring])
	return doc
}

func (d *Document) add(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// compileScales keeps only the latest submission per scale name.
func (d *Document) compileScales(records []model.Record) {
	d.add(Heading{Text: "Échelles cliniques", Level: 2})
	latest := make(map[string]*model.ScaleRecord)
	var order []string
	for _, rec := range records {
		sr, ok := rec.(*model.ScaleRecord)
		if !ok {
			continue
		}
		if _, seen := latest[sr.ScaleName]; !seen {
			order = append(order, sr.ScaleName)
		}
		latest[sr.ScaleName] = sr
	}
	if len(order) == 0 {
		d.add(Paragraph{Text: NoDataLine})
		return
	}
	var pairs []KeyValue
	for _, name := range order {
		sr := latest[name]
		pairs = append(pairs, KeyValue{
			Key:   name,
			Value: fmt.Sprintf("score %d (%s)", sr.Score, sr.Timestamp.Format("02/01/2006")),
		})
	}
	d.add(KeyValueBlock{Pairs: pairs})
}

func (d *Document) compileSleep(records []model.Record) {
	d.add(Heading{Text: "Agenda du sommeil", Level: 2})
	nights := lastN(records, sleepNights)
	if len(nights) == 0 {
		d.add(Paragraph{Text: NoDataLine})
		return
	}

	table := TableBlock{Columns: []string{"Date", "Coucher", "Lever", "Temps au lit", "Efficacité"}}
	var efficiencies []string
	var bedMinutes []int
	for _, rec := range nights {
		sr, ok := rec.(*model.SleepRecord)
		if !ok {
			continue
		}
		inBed := "—"
		if mins, err := sr.TimeInBedMinutes(); err == nil {
			inBed = formatMinutes(mins)
			bedMinutes = append(bedMinutes, mins)
		}
		table.Rows = append(table.Rows, []string{
			sr.Timestamp.Format("02/01/2006"), sr.Coucher, sr.Lever, inBed, sr.Efficiency,
		})
		efficiencies = append(efficiencies, sr.Efficiency)
	}
	d.add(table)

	pairs := []KeyValue{}
	if mean, ok := MeanPercent(efficiencies); ok {
		pairs = append(pairs, KeyValue{Key: "Efficacité moyenne", Value: fmt.Sprintf("%.1f%%", mean)})
	}
	if len(bedMinutes) > 0 {
		total := 0
		for _, m := range bedMinutes {
			total += m
		}
		pairs = append(pairs, KeyValue{Key: "Temps au lit moyen", Value: formatMinutes(total / len(bedMinutes))})
	}
	if len(pairs) > 0 {
		d.add(KeyValueBlock{Pairs: pairs})
	}
}

func (d *Document) compileActivities(records []model.Record) {
	d.add(Heading{Text: "Registre des activités", Level: 2})
	entries := lastN(records, activityEntries)
	if len(entries) == 0 {
		d.add(Paragraph{Text: NoDataLine})
		return
	}

	table := TableBlock{Columns: []string{"Date", "Activité", "Durée", "Plaisir", "Maîtrise"}}
	totalMin, totalPleasure, totalMastery, n := 0, 0, 0, 0
	for _, rec := range entries {
		ar, ok := rec.(*model.ActivityRecord)
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, []string{
			ar.Timestamp.Format("02/01/2006"),
			ar.Activity,
			formatMinutes(ar.DurationMin),
			strconv.Itoa(ar.Pleasure),
			strconv.Itoa(ar.Mastery),
		})
		totalMin += ar.DurationMin
		totalPleasure += ar.Pleasure
		totalMastery += ar.Mastery
		n++
	}
	d.add(table)
	if n > 0 {
		d.add(KeyValueBlock{Pairs: []KeyValue{
			{Key: "Durée totale", Value: formatMinutes(totalMin)},
			{Key: "Plaisir moyen", Value: fmt.Sprintf("%.1f/10", float64(totalPleasure)/float64(n))},
			{Key: "Maîtrise moyenne", Value: fmt.Sprintf("%.1f/10", float64(totalMastery)/float64(n))},
		}})
	}
}

func (d *Document) compileRestructuring(records []model.Record) {
	d.add(Heading{Text: "Restructuration cognitive", Level: 2})
	sheetsRecs := lastN(records, restructurations)
	if len(sheetsRecs) == 0 {
		d.add(Paragraph{Text: NoDataLine})
		return
	}
	for _, rec := range sheetsRecs {
		rr, ok := rec.(*model.RestructuringRecord)
		if !ok {
			continue
		}
		d.add(KeyValueBlock{Pairs: []KeyValue{
			{Key: "Date", Value: rr.Timestamp.Format("02/01/2006")},
			{Key: "Situation", Value: rr.Situation},
			{Key: "Émotion", Value: fmt.Sprintf("%s (%d/10)", rr.Emotion, rr.Intensity)},
			{Key: "Pensée automatique", Value: rr.AutomaticThought},
			{Key: "Distorsion", Value: rr.Distortion},
			{Key: "Pensée alternative", Value: rr.AlternativeThought},
			{Key: "Intensité après", Value: fmt.Sprintf("%d/10", rr.IntensityAfter)},
		}})
	}
}

// lastN keeps the N most recent rows by insertion order, preserving that
// order. Timestamps are not trusted to sort the audit trail.
func lastN(records []model.Record, n int) []model.Record {
	if len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

// MeanPercent averages values like "85%". A value that does not parse is
// excluded from the mean, never counted as zero. The second return is false
// when nothing parsed.
func MeanPercent(values []string) (float64, bool) {
	sum, n := 0.0, 0
	for _, v := range values {
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "%"))
		s = strings.ReplaceAll(s, ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			continue
		}
		sum += f
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func formatMinutes(mins int) string {
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	return fmt.Sprintf("%dh%02d", mins/60, mins%60)
}
