package receipts

import (
	"context"
	"log/slog"

	"github.com/tawonga-banda/pharmacy-pos/internal/models"
)

// Sink receives the rendered receipt after a successful checkout. The core
// never persists receipts itself; sinks are the display/printing/logging
// collaborators.
type Sink interface {
	Name() string
	Publish(ctx context.Context, receipt *models.Receipt, rendered string) error
}

// Fanout delivers the receipt to every configured sink. A failing sink is
// logged and skipped; checkout already succeeded at this point.
type Fanout struct {
	sinks []Sink
}

func NewFanout(sinks ...Sink) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Publish(ctx context.Context, receipt *models.Receipt, rendered string) {
	for _, sink := range f.sinks {
		if err := sink.Publish(ctx, receipt, rendered); err != nil {
			slog.Error("Receipt sink failed",
				slog.String("sink", sink.Name()),
				slog.String("receiptId", receipt.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
}

// LogSink writes the receipt to the structured log, the till's stand-in for
// a printer.
type LogSink struct{}

func (LogSink) Name() string { return "log" }

func (LogSink) Publish(_ context.Context, receipt *models.Receipt, rendered string) error {
	slog.Info("Receipt issued",
		slog.String("receiptId", receipt.ID.String()),
		slog.String("cashier", receipt.Cashier),
		slog.Int64("subtotal", receipt.Subtotal),
		slog.String("receipt", rendered),
	)

	return nil
}
