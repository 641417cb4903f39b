// Package scaffold holds the template catalog and the file synthesizer that
// writes the generator's opinionated overlay into a freshly bootstrapped
// project. Every file carries an overwrite policy so repeated runs converge
// on the same tree without clobbering files the policy says to leave alone.
package scaffold
