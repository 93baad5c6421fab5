package main

//enumorph:derive
func helper() {}
