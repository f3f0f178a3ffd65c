// Package logger builds *slog.Logger values from functional options and adds
// attributes pulled from context.Context to every record.
//
// New picks a text or JSON handler, applies static attributes, and wraps the
// result in LogHandlerDecorator, which runs each registered ContextExtractor
// before a record is written. Output defaults to JSON at info level on
// stderr, so command output on stdout stays clean.
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//		return err
//	}
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "inputcheck"),
//		logger.WithLevel(level),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "rule checked",
//		logger.Field("card"),
//		logger.Kind("credit_card"),
//		logger.Valid(ok),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
