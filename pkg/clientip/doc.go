// Package clientip resolves the address of the client behind a request.
//
//	res := clientip.NewResolver(clientip.DefaultHeaders...)
//	r.Use(clientip.Middleware(res))
//
//	ip := clientip.FromContext(r.Context())
//
// The address keys the registration rate limiter and is attached to log
// records through LoggerExtractor. Only list headers that a trusted proxy
// sets; otherwise clients can choose their own address.
package clientip
