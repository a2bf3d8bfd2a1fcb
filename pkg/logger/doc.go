// Package logger builds log/slog loggers for the registration service.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or JSON), minimum level, static attributes, and ContextExtractor
// callbacks that pull request-scoped values such as the request id out of
// context.Context each time a record is handled. WithEnvironment applies the
// defaults of a deployment environment from pkg/environment.
//
// Attribute helpers in attr.go (Error, RequestID, SubmissionID, Field, Kind,
// HTTPRequest, ...) keep key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "regform"),
//	    logger.WithLevelName(os.Getenv("LOG_LEVEL")),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "field rejected",
//	    logger.Field("email"),
//	    logger.Kind("DisposableDomain"),
//	)
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("operation finished", logger.Error(err))
//
// needs no nil check. WithFormat panics on an unknown format.
package logger
