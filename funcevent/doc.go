// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package funcevent runs an http.Handler against a cloud-function event.

A function runtime delivers one JSON event per invocation and expects a JSON
response object back:

	{"httpMethod": "GET", "queryStringParameters": {"status": "all"}, "body": ""}
	{"statusCode": 200, "headers": {"Access-Control-Allow-Origin": "*"}, "body": "[...]"}

Invoke replays the event through a handler and captures what it writes:

	resp, err := funcevent.Invoke(ctx, router.Endpoint(handlers.ReviewMethods, reviewHandler), event)

A missing httpMethod means GET. Response headers with several values keep
only the first. Bodies that are not valid UTF-8 come back base64 encoded
with isBase64Encoded set.
*/
package funcevent
