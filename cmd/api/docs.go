package main

// General API metadata for swag.
//
// @title LRI Engine API
// @version 1.0
// @description Landing Risk Index scoring service. Computes weather, navigation-integrity and terrain sub-scores for a landing point and combines them into a single graded index.
// @BasePath /
