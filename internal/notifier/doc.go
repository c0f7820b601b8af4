// Package notifier posts box score summaries to external channels.
//
// A summary names the matchup, the final score and the top fantasy performers.
// Notifiers exist for Twitter (OAuth1 via go-twitter), Telegram (Bot API) and a
// dry-run mode that writes the message locally instead of posting it.
package notifier
