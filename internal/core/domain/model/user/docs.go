// Package user models the people acting in the delivery workflow: clients,
// restaurants, couriers and administrators. A user's Role decides which order
// transitions it may request and which HTTP surfaces it may reach.
package user
