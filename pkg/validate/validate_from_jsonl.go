package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/ports"
)

// maxReportedErrors — сколько ошибок по строкам попадает в отчёт.
const maxReportedErrors = 20

// LineError — ошибка конкретной записи (номер строки JSONL или индекс в массиве, с 1).
type LineError struct {
	Line int
	Err  error
}

// Report — итог проверки набора событий строк заказа.
type Report struct {
	Valid    int
	Invalid  int
	Removals int // валидные события с count=0
	Sessions int // различных session_id среди валидных
	Errors   []LineError

	seen map[string]struct{}
}

func (r *Report) String() string {
	return fmt.Sprintf("%d valid / %d invalid (%d removals, %d sessions)", r.Valid, r.Invalid, r.Removals, r.Sessions)
}

func (r *Report) addValid(ev *domain.LineEvent) {
	r.Valid++
	if ev.Count == 0 {
		r.Removals++
	}
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, ok := r.seen[ev.SessionID]; !ok {
		r.seen[ev.SessionID] = struct{}{}
		r.Sessions++
	}
}

func (r *Report) addInvalid(line int, err error) {
	r.Invalid++
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, LineError{Line: line, Err: err})
	}
}

// ValidateJSONLStream — по событию на строку; валидные пишутся в ow компактным JSON.
// Пустые строки пропускаются, невалидные попадают в отчёт и не прерывают проверку.
func ValidateJSONLStream(ctx context.Context, validator ports.LineValidator, ir io.Reader, ow io.Writer) (*Report, error) {
	rep := &Report{}

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if ctx.Err() != nil {
			return rep, ctx.Err()
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if err := checkOne(ctx, validator, raw, lineNo, rep, ow); err != nil {
			return rep, err
		}
	}
	if err := scanner.Err(); err != nil {
		return rep, fmt.Errorf("scan: %w", err)
	}
	return rep, nil
}

// checkOne — валидирует одну запись; ошибка возвращается только при сбое записи в ow.
func checkOne(ctx context.Context, validator ports.LineValidator, raw []byte, pos int, rep *Report, ow io.Writer) error {
	ev, err := ValidateLineFromJSON(ctx, validator, raw)
	if err != nil {
		rep.addInvalid(pos, err)
		return nil
	}
	rep.addValid(ev)
	return writeCanonical(ow, ev)
}

func writeCanonical(ow io.Writer, ev *domain.LineEvent) error {
	canonical, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal line: %w", err)
	}
	canonical = append(canonical, '\n')
	if _, err := ow.Write(canonical); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	return nil
}
