// Package github provides a minimal GitHub REST API client for discovering
// recently created repositories by topic.
//
// [Client.Trending] runs one repository search per topic, sorted by stars,
// and reports the outcome of every query as a [TopicResult] so callers can
// log failed topics and carry on with whatever the others returned.
package github
