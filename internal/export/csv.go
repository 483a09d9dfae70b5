// Package export turns submission lists into the spreadsheet file teachers
// download. Serialize is pure; delivery goes through a Sink so callers (HTTP
// download, CLI dump) stay independently testable.
package export

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"art-quiz-service/internal/domain"
)

// BaseFilename is the fixed stem of every exported file.
const BaseFilename = "notas_quiz_artes"

var header = []string{
	"ID da Submissão",
	"Nome do Aluno",
	"Escola",
	"Turma",
	"Pontuação",
	"Total de Questões",
	"Data da Submissão",
}

// Serialize renders submissions as comma-separated text: a fixed 7-field
// header row, then one row per submission in input order, dates rendered
// dd/mm/yyyy hh:mm:ss in local time. Fields are emitted verbatim, without
// quoting or escaping: a comma inside a student name will shift that row's
// columns. This matches the original file format and is a documented
// limitation, not an oversight; school and class values come from a fixed
// comma-free roster.
func Serialize(data []domain.Submission) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')
	for i, s := range data {
		if i > 0 {
			b.WriteByte('\n')
		}
		row := []string{
			s.ID,
			s.StudentName,
			s.School,
			s.ClassName,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.TotalQuestions),
			FormatTimestamp(s.Timestamp),
		}
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

// FormatTimestamp renders a ms-epoch timestamp the way pt-BR locales do.
func FormatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("02/01/2006 15:04:05")
}

// Filename builds the download name for a filter: the base stem, a school
// suffix when a school is selected, a class suffix when a class is selected,
// whitespace replaced with underscores.
func Filename(filter domain.Filter) string {
	name := BaseFilename
	if filter.School != domain.FilterAll {
		name += "_" + sanitize(filter.School)
	}
	if filter.ClassName != domain.FilterAll {
		name += "_" + sanitize(filter.ClassName)
	}
	return name + ".csv"
}

func sanitize(s string) string {
	return strings.Join(strings.Fields(s), "_")
}

// Sink delivers a serialized payload under a filename. The HTTP layer
// streams it as an attachment; the CLI writes it to disk.
type Sink interface {
	Save(filename, payload string) error
}

// DirSink writes exports into a directory on the local filesystem.
type DirSink struct {
	Dir string
}

func (d DirSink) Save(filename, payload string) error {
	return os.WriteFile(filepath.Join(d.Dir, filename), []byte(payload), 0o644)
}
