// Package msgcheck embeds the message classifier in a Go program without
// running the HTTP service.
//
//	client, err := msgcheck.New(
//	    msgcheck.WithArtifacts("artifacts/vectorizer.json", "artifacts/classifier.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	label, err := client.Predict(ctx, "WIN a free prize now")
//	if msgcheck.IsFake(label) {
//	    // warn the user
//	}
//
// Artifacts are loaded once by New. A Client is safe for concurrent use.
package msgcheck
