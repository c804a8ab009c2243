package types

type contextKey string

// ClientAppKey — ключ контекста, под которым root-команда передает
// собранное приложение подкомандам.
const ClientAppKey contextKey = "clientApp"
