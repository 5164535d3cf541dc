/*
Package devserver is a local stand-in for the OdontoFast authentication API.

It serves POST /api/login with the same wire contract the client expects:
{"nrCarteira", "senha"} in, {"nome", "token"} out on success and
{"mensagem"} with 400, 401 or 429 on failure. Users come from a YAML seed
file, passwords are bcrypt hashed, tokens are HS256 JWTs. Requests pass
through CORS (the Expo web build calls it from the browser), a per-IP login
rate limiter and a zerolog request logger.
*/
package devserver
