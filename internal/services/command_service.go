package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"addressbook/internal/commands"
	"addressbook/internal/core"
	"addressbook/internal/log"
	"addressbook/internal/metrics"
	"addressbook/internal/model"
	"addressbook/internal/parser"
	"addressbook/internal/storage"
)

// PaymentPublisher announces marked payments to downstream consumers.
type PaymentPublisher interface {
	PublishPaymentsMarked(ctx context.Context, ev core.PaymentEvent) error
}

// CommandService runs user command lines against the model, persists the
// contact list after every change and publishes payment events.
//
// Like the model it drives, a CommandService is not safe for concurrent use.
type CommandService struct {
	model     model.Model
	store     storage.ContactStore
	publisher PaymentPublisher
	metrics   *metrics.Metrics
	logger    *log.Logger
}

// NewCommandService wires the service. publisher and m may be nil.
func NewCommandService(mdl model.Model, store storage.ContactStore, publisher PaymentPublisher, m *metrics.Metrics, logger *log.Logger) *CommandService {
	return &CommandService{
		model:     mdl,
		store:     store,
		publisher: publisher,
		metrics:   m,
		logger:    logger.WithComponent(log.ComponentCommand),
	}
}

// Load replaces the model's contacts with the stored snapshot.
func (s *CommandService) Load(ctx context.Context) error {
	contacts, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	if err := s.model.ResetContacts(contacts); err != nil {
		return fmt.Errorf("load contacts: %w", err)
	}
	s.model.UpdateFilteredContacts(model.ShowAll)
	s.logger.InfoContext(ctx, "Contacts loaded", "count", len(contacts))
	return nil
}

// Contacts returns the full contact list.
func (s *CommandService) Contacts() []core.Contact {
	return s.model.Contacts()
}

// Execute parses and runs line.
//
// Parse and command errors are user-correctable and leave the model
// unchanged. When saving fails after a successful command, the returned
// Result is still valid and the error reports the storage failure; the
// in-memory change is kept and no payment event is published.
func (s *CommandService) Execute(ctx context.Context, line string) (commands.Result, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		s.metrics.ObserveCommand("invalid", metrics.OutcomeRejected)
		s.logger.DebugContext(ctx, "Rejected command line", log.FieldError, err)
		return commands.Result{}, err
	}
	word := cmd.Word()

	res, err := cmd.Execute(s.model)
	if err != nil {
		outcome := metrics.OutcomeFailed
		var cmdErr *commands.Error
		if errors.As(err, &cmdErr) {
			outcome = metrics.OutcomeRejected
		}
		s.metrics.ObserveCommand(word, outcome)
		s.logger.InfoContext(ctx, "Command rejected",
			log.NewFields().WithCommand(word).WithError(err).ToSlice()...)
		return commands.Result{}, err
	}

	if res.Mutated {
		if err := s.store.Save(ctx, s.model.Contacts()); err != nil {
			s.metrics.ObserveCommand(word, metrics.OutcomeFailed)
			s.logger.ErrorContext(ctx, "Failed to save contacts",
				log.NewFields().WithCommand(word).WithOperation(log.OpSave).WithError(err).ToSlice()...)
			return res, fmt.Errorf("save contacts: %w", err)
		}
	}
	s.metrics.ObserveCommand(word, metrics.OutcomeSuccess)

	if res.Payment != nil {
		s.metrics.AddMonthsMarked(len(res.Payment.Months))
		if err := s.publishPayment(ctx, *res.Payment); err != nil {
			s.metrics.IncPublishFailure()
			s.logger.ErrorContext(ctx, "Failed to publish payment event",
				paymentFields(*res.Payment).WithOperation(log.OpPublish).WithError(err).ToSlice()...)
		}
	}

	s.logger.DebugContext(ctx, "Command executed", log.FieldCommand, word, "mutated", res.Mutated)
	return res, nil
}

func (s *CommandService) publishPayment(ctx context.Context, ev core.PaymentEvent) error {
	if s.publisher == nil {
		s.logger.WarnContext(ctx, "AMQP client not available, skipping payment event",
			log.FieldEventID, ev.ID.String())
		return nil
	}
	return s.publisher.PublishPaymentsMarked(ctx, ev)
}

func paymentFields(ev core.PaymentEvent) log.LogFields {
	months := make([]string, len(ev.Months))
	for i, m := range ev.Months {
		months[i] = string(m)
	}
	return log.NewFields().WithPayment(ev.ID.String(), ev.ContactID.String(),
		string(ev.ContactName), string(ev.ClassID), months, ev.Fees.Cents)
}

// Close releases the publisher when it holds a connection. The store is
// owned by whoever created it.
func (s *CommandService) Close() error {
	c, ok := s.publisher.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("close publisher: %w", err)
	}
	return nil
}
