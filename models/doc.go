// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Contest: competition listing (camelCase JSON, as the frontend expects)
  - Application: a contestant's entry, possibly soft-deleted
  - Result: judged outcome, at most one per application
  - PublicResult, GalleryWork: consented read-only projections
  - Review: testimonial under moderation

# Request Types

  - ContestRequest: create and full-replace update
  - SubmitApplicationRequest: applicant metadata plus base64 work file
  - UpdateApplicationRequest: admin full-replace edit
  - CreatePaymentRequest: amount, description and ApplicantData
  - WebhookNotification: gateway event payload
  - ResultRequest: create and full-replace update
  - CreateReviewRequest, ModerateReviewRequest
  - UploadFileRequest: base64 payload for object storage

Required fields carry `validate` tags checked by the validate package.

# Status Values

Applications move new → (edited) or pending → paid. A pending application
whose checkout could not be created is marked failed.

Reviews start pending and are moderated to approved or rejected.

# Error Response

All errors use this format:

	{"error": "Missing required fields: full_name"}
*/
package models
