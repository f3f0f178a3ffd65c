// Package environment names the environment a run belongs to and carries it
// through context.Context.
//
// Parse normalizes configuration values such as "prod" or "Dev" to the
// Development, Staging and Production constants, and Environment implements
// encoding.TextUnmarshaler so it can be used directly in env-tagged config
// structs. WithContext and FromContext move the value through a context, and
// LoggerExtractor exposes it to the logger as an "env" attribute.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//		return err
//	}
//	ctx = environment.WithContext(ctx, env)
//
// Missing values read back as the empty Environment.
package environment
