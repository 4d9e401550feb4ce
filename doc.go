/*
Package cloudops provides CLI tooling for the day-to-day operation of our
samples on Google Cloud.

Each command is a short, linear and independent task: parse flags, call a
cloud API or fill a template, print a result. The cloudops command tree lives
in cmd/cloudops:

  - bigquery create-query-job: materializes the results of a query job into a
    new BigQuery table, creating its dataset if needed
  - deployment gcs-index|populate-bucket: prints the kubernetes Deployment
    manifest of a GKE worker, to be applied with kubectl
*/
package cloudops
