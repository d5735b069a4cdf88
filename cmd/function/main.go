// Local runner for the serverless deployment.
package main

import (
    "log"
    "os"

    "github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

    _ "irisapi/function"
)

func main() {
    port := os.Getenv("PORT")
    if port == "" {
        port = "8080"
    }
    if err := funcframework.Start(port); err != nil {
        log.Fatalf("funcframework.Start: %v", err)
    }
}
