// Package webhook delivers accepted registrations to an HTTP endpoint.
//
// # Usage
//
//	sender, err := webhook.NewSender("https://crm.example.com/hooks/registrations",
//		webhook.WithSecret(secret),
//		webhook.WithMaxRetries(3),
//	)
//	if err != nil {
//		return err
//	}
//	err = sender.Send(ctx, "registration.accepted", submission)
//
// Each request carries an Event JSON body and the X-Webhook-ID header. With
// a secret, X-Webhook-Timestamp and X-Webhook-Signature are added, where the
// signature is hex(HMAC-SHA256(secret, timestamp + "." + body)). Receivers
// check it with Verify.
//
// # Error Handling
//
// Network errors, 5xx, 408, 425 and 429 are retried with doubling delays.
// Other 4xx answers stop at once with ErrPermanentFailure. Exhausted retries
// and cancelled contexts yield ErrDeliveryFailed.
package webhook
