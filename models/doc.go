// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types exchanged by
the GesTalent portal API.

JSON field names follow the portal frontend's Spanish naming (nombre,
telefono, areaInteres, respuestas, promedios) so payloads stay compatible
with the deployed single-page app.

Questionnaire payloads use two typed maps instead of free-form objects:

  - AnswerMap: item ID → answer (string or number, anything else is a 400)
  - ScoreMap: category/dimension → numeric score

Both are validated during JSON decoding, so a malformed structure fails the
request instead of being stored as an empty object.
*/
package models
