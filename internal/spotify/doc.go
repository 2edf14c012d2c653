package spotify

// Package spotify implements a minimal client for the Spotify Web API,
// scoped to the recently-played history endpoint. Responses are parsed into
// typed records at the boundary and mapped to domain tracks; authentication
// uses golang.org/x/oauth2 with the Spotify account endpoints.
