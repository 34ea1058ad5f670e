// Command seed creates forum documents. Forum creation is an operator task,
// not part of the service surface, so it lives in its own small binary:
//
//	seed -id rw -name "Reading and Writing"
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/forumhub/forumhub/backend/forum-service/internal/database"
	"github.com/forumhub/forumhub/backend/forum-service/internal/models"
)

func main() {
	id := flag.String("id", "", "forum id (document key)")
	name := flag.String("name", "", "forum display name")
	flag.Parse()

	if *id == "" || *name == "" {
		log.Fatal("both -id and -name are required")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("environment variable MONGODB_URI is required")
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "forum"
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri, 10*time.Second)
	if err != nil {
		log.Fatalf("cannot connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	col := client.Database(dbName).Collection("documents")
	if err := database.EnsureDocumentIndexes(ctx, col); err != nil {
		log.Printf("warning: failed to ensure indexes: %v", err)
	}

	forum := models.Forum{ID: *id, Type: models.TypeForum, Name: *name}
	if _, err := col.InsertOne(ctx, forum); err != nil {
		log.Fatalf("failed to create forum %q: %v", *id, err)
	}
	log.Printf("created forum %q (%s)", *id, *name)
}
