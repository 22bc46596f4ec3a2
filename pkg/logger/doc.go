// Package logger builds *slog.Logger instances for the cardfront server.
//
// New takes functional options; WithEnvironment picks the per-environment
// defaults and WithContextExtractors wires request-scoped values (request id,
// language) into every record through NewContextHandler.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "cardfront"),
//		logger.WithContextExtractors(requestid.LoggerExtractor(), i18n.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "card created", logger.CardID(c.ID), logger.CardNumber(card.MaskNumber(c.CardNumber)))
//
// The attribute helpers in attr.go keep key names consistent. Error and
// RequestID return an empty Attr for nil input, which slog drops, so callers
// need no nil checks.
//
// Card numbers must be masked before they reach a log record.
package logger
